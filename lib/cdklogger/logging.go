package cdklogger

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// LogInfo adds an INFO level message to the CDK construct's metadata.
// These messages are printed during `cdk synth`.
func LogInfo(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddInfo(jsii.String(message(scope, constructID, format, args...)))
}

// LogWarning adds a WARNING level message to the CDK construct's metadata.
// `cdk synth --strict` fails on warnings.
func LogWarning(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddWarningV2(
		jsii.String("staticfast:"+warningID(constructID)),
		jsii.String(message(scope, constructID, format, args...)),
	)
}

// LogError adds an ERROR level message to the CDK construct's metadata.
// Errors abort deployment.
func LogError(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddError(jsii.String(message(scope, constructID, format, args...)))
}

// message prefixes the text with [constructID] unless the scope path already
// ends with that id.
func message(scope constructs.Construct, constructID string, format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if constructID == "" {
		return msg
	}

	cdkPath := *scope.Node().Path()
	if strings.HasSuffix(cdkPath, "/"+constructID) || cdkPath == constructID {
		return msg
	}
	return fmt.Sprintf("[%s] %s", constructID, msg)
}

func warningID(constructID string) string {
	if constructID == "" {
		return "general"
	}
	return strings.ToLower(constructID)
}
