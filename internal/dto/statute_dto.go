package dto

// PublishEmbedStatuteMessage is the embed-job payload carried over the
// in-process bus. The consumer splits, embeds and persists the text.
type PublishEmbedStatuteMessage struct {
	Act     string `json:"act"`
	Section string `json:"section"`
	Domain  string `json:"domain"`
	Text    string `json:"text"`
}

type IngestSectionRequest struct {
	Act     string `json:"act" validate:"required"`
	Section string `json:"section" validate:"required"`
	Domain  string `json:"domain" validate:"required"`
	Text    string `json:"text" validate:"required,min=20"`
}
