package ibge

// apiState is one element of GET /estados.
type apiState struct {
	ID    int    `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

// apiCity is one element of GET /estados/{UF}/municipios.
type apiCity struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}
