// Package events classifies inbound Lambda payloads and resolves the typed
// decoders for the known AWS event families.
package events

import (
	"reflect"

	awsevents "github.com/aws/aws-lambda-go/events"
)

// Family identifies one of the AWS event schemas the bridge decodes natively.
type Family int

const (
	FamilyUnknown Family = iota
	FamilySQS
	FamilySNS
	FamilyKinesis
	FamilyS3
	FamilyAPIGatewayV1
	FamilyAPIGatewayV2
)

// String returns the string representation of the Family
func (f Family) String() string {
	switch f {
	case FamilySQS:
		return "SQS"
	case FamilySNS:
		return "SNS"
	case FamilyKinesis:
		return "Kinesis"
	case FamilyS3:
		return "S3"
	case FamilyAPIGatewayV1:
		return "APIGatewayV1"
	case FamilyAPIGatewayV2:
		return "APIGatewayV2"
	default:
		return "Unknown"
	}
}

// IsGateway reports whether the family is one of the two API Gateway request
// generations. Gateway requests get the gateway marker and an envelope on
// the way out.
func (f Family) IsGateway() bool {
	return f == FamilyAPIGatewayV1 || f == FamilyAPIGatewayV2
}

var familyTypes = map[reflect.Type]Family{
	reflect.TypeOf(awsevents.SQSEvent{}):                FamilySQS,
	reflect.TypeOf(awsevents.SNSEvent{}):                FamilySNS,
	reflect.TypeOf(awsevents.KinesisEvent{}):            FamilyKinesis,
	reflect.TypeOf(awsevents.S3Event{}):                 FamilyS3,
	reflect.TypeOf(awsevents.APIGatewayProxyRequest{}):  FamilyAPIGatewayV1,
	reflect.TypeOf(awsevents.APIGatewayV2HTTPRequest{}): FamilyAPIGatewayV2,
}

var typeByFamily = func() map[Family]reflect.Type {
	m := make(map[Family]reflect.Type, len(familyTypes))
	for t, f := range familyTypes {
		m[f] = t
	}
	return m
}()

var familyByName = map[string]Family{
	"sqs":     FamilySQS,
	"sns":     FamilySNS,
	"kinesis": FamilyKinesis,
	"s3":      FamilyS3,
	"apigw":   FamilyAPIGatewayV1,
	"apigw2":  FamilyAPIGatewayV2,
}

// FamilyOf returns the event family whose concrete Go type matches t.
// The caller is expected to have unwrapped any message or pointer layer.
func FamilyOf(t reflect.Type) (Family, bool) {
	if t == nil {
		return FamilyUnknown, false
	}
	f, ok := familyTypes[t]
	return f, ok
}

// TypeOf returns the concrete Go type for a family.
func TypeOf(f Family) (reflect.Type, bool) {
	t, ok := typeByFamily[f]
	return t, ok
}

// FamilyByName resolves a short family name (as accepted by the local
// harness) to its Family.
func FamilyByName(name string) (Family, bool) {
	f, ok := familyByName[name]
	return f, ok
}
