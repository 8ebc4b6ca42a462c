package remote

import (
	"encoding/json"

	"fintrack/internal/core"
)

// Wire shapes of the upstream API. Only the fields the tracker consumes are
// parsed; the upstream sends more.

type statusReply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type allDataReply struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    []wireTransaction `json:"data"`
}

type wireTransaction struct {
	ID     string  `json:"_id"`
	Name   string  `json:"name"` // category tag: "income" | "expense"
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Icon   string  `json:"icon"`
}

type wireProfile struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type addDataRequest struct {
	Name   string  `json:"name"`
	Source string  `json:"source"`
	Email  string  `json:"email"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Icon   string  `json:"icon"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func parseStatus(data []byte) (*statusReply, error) {
	rep := &statusReply{}
	err := json.Unmarshal(data, rep)
	return rep, err
}

func parseAllData(data []byte) ([]core.Transaction, *statusReply, error) {
	raw := &allDataReply{}
	if err := json.Unmarshal(data, raw); err != nil {
		return nil, nil, err
	}

	txns := make([]core.Transaction, 0, len(raw.Data))
	for _, t := range raw.Data {
		txns = append(txns, core.Transaction{
			ID:       t.ID,
			Source:   t.Source,
			Amount:   t.Amount,
			Date:     t.Date,
			Icon:     t.Icon,
			Category: t.Name,
		})
	}
	return txns, &statusReply{Success: raw.Success, Message: raw.Message}, nil
}

func parseProfile(data []byte) (core.Profile, error) {
	p := wireProfile{}
	if err := json.Unmarshal(data, &p); err != nil {
		return core.Profile{}, err
	}
	return core.Profile{Email: p.Email, Name: p.Name, Avatar: p.Avatar}, nil
}
