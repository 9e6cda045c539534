package models

// Entry is one appliance error-code record with its diagnostic metadata.
//
// All catalog sources (local JSON file, remote catalog URL, database)
// are mapped into this structure first; the filter engine only ever
// sees Entry values.
type Entry struct {
	Brand         string   `json:"brand"`
	Type          string   `json:"type"`
	Code          string   `json:"code"`
	Issue         string   `json:"issue"`
	FixSummary    string   `json:"fix_summary"`
	PartsNeeded   []string `json:"parts_needed"`
	AffiliateLink string   `json:"affiliate_link,omitempty"`
	VideoGuide    string   `json:"video_guide,omitempty"`
}
