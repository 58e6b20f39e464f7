package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// statusResponse is the success envelope shared by the write endpoints.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type balanceResponse struct {
	Status  string  `json:"status"`
	Balance float64 `json:"balance"`
}

type windowResponse struct {
	Gains  float64 `json:"gains"`
	Spends float64 `json:"spends"`
}

type analyticsResponse struct {
	Status  string         `json:"status"`
	Daily   windowResponse `json:"daily"`
	Monthly windowResponse `json:"monthly"`
	Yearly  windowResponse `json:"yearly"`
}

// looseNumber accepts a JSON number or a numeric string and coerces it
// to float64. Anything else coerces to 0, which the web client has
// depended on since the first release. A zero then fails `required`
// validation the same way an absent field does.
type looseNumber float64

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = looseNumber(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = 0
		return nil
	}
	*n = looseNumber(f)
	return nil
}
