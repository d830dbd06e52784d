package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/menteviva-api/internal/config"
	"github.com/saulo-duarte/menteviva-api/internal/container"
)

func main() {
	c, err := container.New(context.Background(), config.Load())
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	adapter := httpadapter.New(c.Router())
	lambda.Start(adapter.ProxyWithContext)
}
