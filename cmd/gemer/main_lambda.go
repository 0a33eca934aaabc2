//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"gem-optimizer/internal/catalog"
	"gem-optimizer/internal/optimizer"
	"gem-optimizer/internal/scenario"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

var (
	pool = catalog.Default()
	log  = slog.New(slog.NewJSONHandler(os.Stderr, nil))
)

// handler runs the scenario posted as the request body (YAML or JSON)
// against the built-in catalog.
func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}
	if body == "" {
		return errResp(400, "missing scenario")
	}

	sc, err := scenario.Parse([]byte(body))
	if err != nil {
		return errResp(400, "invalid scenario: "+err.Error())
	}
	if sc.Name == "" {
		sc.Name = "request"
	}

	r, err := runScenario(ctx, sc, pool, optimizer.DefaultConfig(), log)
	if err != nil {
		return errResp(400, err.Error())
	}

	respJSON, _ := json.Marshal(r)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
