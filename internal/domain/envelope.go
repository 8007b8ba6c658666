package domain

// DataSource tags whether an envelope carries live upstream data or
// generated fallback data.
type DataSource string

const (
	SourceReal DataSource = "REAL"
	SourceMock DataSource = "MOCK"
)

// Provenance is the metadata block attached to every feed response. The
// browser UI keys its messaging off these fields, so the JSON names are
// part of the contract.
type Provenance struct {
	DataSource    DataSource `json:"_dataSource,omitempty"`
	APIProvider   string     `json:"_apiProvider,omitempty"`
	Message       string     `json:"_message,omitempty"`
	RequestedDate string     `json:"_requestedDate,omitempty"`
	FallbackDate  string     `json:"_fallbackDate,omitempty"`
}

// GamesEnvelope is a games feed response plus provenance.
type GamesEnvelope struct {
	Data []Game `json:"data"`
	Provenance
}

// StatsEnvelope is a team-stats response plus provenance.
type StatsEnvelope struct {
	Data StatBlock `json:"data"`
	Provenance
}

// OddsEnvelope is a quoted-odds response plus provenance.
type OddsEnvelope struct {
	Odds
	Provenance
}
