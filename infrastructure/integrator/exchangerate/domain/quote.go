package ratedomain

// QuoteResponse é a resposta do endpoint /json/last/USD-BRL da AwesomeAPI
type QuoteResponse struct {
	USDBRL *Quote `json:"USDBRL"`
}

// Quote representa a cotação de um par de moedas na AwesomeAPI.
// Os valores numéricos chegam como texto.
type Quote struct {
	Code       string `json:"code"`
	CodeIn     string `json:"codein"`
	Name       string `json:"name"`
	High       string `json:"high"`
	Low        string `json:"low"`
	VarBid     string `json:"varBid"`
	PctChange  string `json:"pctChange"`
	Bid        string `json:"bid"`
	Ask        string `json:"ask"`
	Timestamp  string `json:"timestamp"`
	CreateDate string `json:"create_date"`
}
