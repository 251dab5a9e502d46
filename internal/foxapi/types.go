package foxapi

// FloofResponse mirrors the payload returned by the floof endpoint.
type FloofResponse struct {
	Image string `json:"image"`
	Link  string `json:"link"`
}
