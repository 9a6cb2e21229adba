//go:build lambda

package main

import (
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

//go:embed items.txt
var embeddedItems string

//go:embed data.json
var embeddedData string

// Both files ship with the binary; a broken copy should fail the cold start, not a request.
var (
	defaultCatalog = lo.Must(parseItems(strings.NewReader(embeddedItems)))
	_              = lo.Must(loadDataFromString(embeddedData))
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type generateRequest struct {
	Seed    *int64   `json:"seed"`
	Exclude []string `json:"exclude"`
	Items   []string `json:"items"`
}

type generateResult struct {
	ShopID string     `json:"shopId"`
	Seed   int64      `json:"seed"`
	Config ShopConfig `json:"config"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req generateRequest
	if strings.TrimSpace(body) != "" {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			return errResp(400, "invalid JSON: "+err.Error())
		}
	}

	catalog := defaultCatalog
	if len(req.Items) > 0 {
		var err error
		if catalog, err = ParseItemLines(req.Items); err != nil {
			return errResp(400, err.Error())
		}
	}
	catalog = FilterCatalog(catalog, req.Exclude)
	if len(catalog) == 0 {
		return errResp(422, ErrEmptyCatalog.Error())
	}

	sampler := NewRandomSampler()
	if req.Seed != nil {
		sampler = NewSampler(*req.Seed)
	}
	res, err := GenerateShop(catalog, sampler)
	if err != nil {
		if errors.Is(err, ErrInsufficientItems) {
			return errResp(422, err.Error())
		}
		return errResp(500, err.Error())
	}

	resp := generateResult{
		ShopID: uuid.NewString(),
		Seed:   sampler.Seed(),
		Config: res.Config,
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
