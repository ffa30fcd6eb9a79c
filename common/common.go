package common

import (
	"github.com/crmbridge/signbridge-api/internal/signnow"
	"github.com/crmbridge/signbridge-api/internal/webhook"
	"github.com/crmbridge/signbridge-api/internal/workflow"
	"github.com/crmbridge/signbridge-api/type/shared"
	"github.com/minio/minio-go/v7"
	"gopkg.in/gomail.v2"
)

var Config *shared.Config
var SignNow *signnow.Client
var Workflow *workflow.Service
var Verifier *webhook.Verifier
var Dispatcher *webhook.Dispatcher
var MinIOClient *minio.Client
var Dialer *gomail.Dialer
