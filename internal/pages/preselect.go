package pages

import (
	"encoding/json"
	"fmt"
	"html/template"

	"fixhub/pkg/models"
)

// preselectScript builds the inline script that pins the widget on a
// generated page to this page's entry, so the card shows without any
// dropdown interaction.
func preselectScript(card models.Card) (template.JS, error) {
	sel := struct {
		Brand string `json:"brand"`
		Type  string `json:"type"`
		Code  string `json:"code"`
	}{card.Brand, card.Type, card.Code}

	b, err := json.Marshal(sel)
	if err != nil {
		return "", fmt.Errorf("marshal preselect: %w", err)
	}
	return template.JS("window.FIXHUB_PRESELECT = " + string(b) + ";"), nil
}
