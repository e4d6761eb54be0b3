// Package testutil provides shared testing utilities and fixtures.
package testutil

import (
	"io"
	"log/slog"
)

// SilentLogger creates a logger that discards all output.
func SilentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Minimal valid event documents for each family the bridge decodes.
const (
	SQSEventDoc = `{"Records":[{"messageId":"m-1","receiptHandle":"rh-1","body":"hello","eventSource":"aws:sqs"}]}`

	SNSEventDoc = `{"Records":[{"EventSource":"aws:sns","Sns":{"MessageId":"n-1","Message":"hello","Type":"Notification"}}]}`

	KinesisEventDoc = `{"Records":[{"eventSource":"aws:kinesis","eventName":"aws:kinesis:record",` +
		`"kinesis":{"partitionKey":"pk-1","sequenceNumber":"1","data":"aGVsbG8="}}]}`

	S3EventDoc = `{"Records":[{"eventSource":"aws:s3","eventName":"ObjectCreated:Put",` +
		`"s3":{"bucket":{"name":"test-bucket"},"object":{"key":"test-key"}}}]}`

	GatewayV1EventDoc = `{"httpMethod":"GET","path":"/things","body":"hi","resource":"/things"}`

	GatewayV2EventDoc = `{"version":"2.0","routeKey":"$default","rawPath":"/things",` +
		`"requestContext":{"http":{"method":"GET","path":"/things"}},"body":"hi"}`
)
