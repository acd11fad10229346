package teams

// Team is one entry of the shared teams file.
type Team struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}
