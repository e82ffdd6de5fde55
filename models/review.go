package models

// Review is a tour review submission. Reviews are not stored here; they are
// logged and the visitor is forwarded to the public review profile.
type Review struct {
	Author        string `form:"author" json:"author"`
	Email         string `form:"email" json:"email"`
	URL           string `form:"url" json:"url"`
	QualityRating string `form:"rt_rating_quality" json:"rt_rating_quality"`
	PriceRating   string `form:"rt_rating_price" json:"rt_rating_price"`
	ServiceRating string `form:"rt_rating_service" json:"rt_rating_service"`
	Comment       string `form:"comment" json:"comment"`
	TourID        string `form:"comment_post_ID" json:"comment_post_ID"`
}
