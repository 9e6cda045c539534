package models

// Card is the display form of an Entry handed to presentation layers:
// the HTTP resolve endpoint, the CLI, and the static page generator
// all consume this instead of raw entries.
type Card struct {
	Heading         string   `json:"heading"` // "Acme Washer - F21"
	Brand           string   `json:"brand"`
	Type            string   `json:"type"`
	Code            string   `json:"code"`
	Issue           string   `json:"issue"`
	FixSummary      string   `json:"fix_summary"`
	Parts           []string `json:"parts"`
	AffiliateLink   string   `json:"affiliate_link,omitempty"`
	VideoGuide      string   `json:"video_guide,omitempty"`
	Slug            string   `json:"slug"`
	PageTitle       string   `json:"page_title"`
	MetaDescription string   `json:"meta_description"`
}
