package constants

// GatewayMarkerHeader marks a canonical message as originating from an API
// Gateway style trigger. It is internal routing state and never appears in
// the bytes returned to the platform.
const GatewayMarkerHeader = "aws-api-gateway"

// LambdaContextHeader carries the Lambda invocation context on a canonical
// message when one was supplied. The value is opaque to the bridge.
const LambdaContextHeader = "aws-context"

// HTTPMethodHeader is the field API Gateway proxy events use for the HTTP
// verb. Its presence in a generic JSON object identifies a gateway-originated
// request.
const HTTPMethodHeader = "httpMethod"

// StatusCodeHeader is the response header consulted when synthesizing the
// gateway response envelope.
const StatusCodeHeader = "statusCode"

// RecordsHeader appears on requests whose top-level event document carried a
// Records array. Kinesis-backed gateway responses key off it to include a
// status description.
const RecordsHeader = "Records"

// BodyField is the gateway event field holding the request body.
const BodyField = "body"

// HeadersField is the event field holding nested transport headers.
const HeadersField = "headers"
