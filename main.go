package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/crmbridge/signbridge-api/api"
	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/common/config"
	"github.com/crmbridge/signbridge-api/common/util"
	"github.com/crmbridge/signbridge-api/internal/signnow"
	"github.com/crmbridge/signbridge-api/internal/webhook"
	"github.com/crmbridge/signbridge-api/internal/workflow"
)

func main() {
	config.LoadConfig()

	// Provider authentication is an explicit startup phase; the server never
	// accepts requests with an unauthenticated client.
	client := signnow.New(signnow.Config{
		ApiUrl:       *common.Config.SignNowApiUrl,
		ClientId:     *common.Config.SignNowClientId,
		ClientSecret: *common.Config.SignNowSecret,
		Username:     *common.Config.SignNowUser,
		Password:     *common.Config.SignNowPassword,
	})
	if err := client.Authenticate(context.Background()); err != nil {
		slog.Error("Failed to authenticate with SignNow", "error", err)
		os.Exit(1)
	}

	common.SignNow = client
	common.Workflow = workflow.New(client)
	common.Verifier = webhook.NewVerifier(*common.Config.WebhookSecretKey)
	common.Dispatcher = webhook.NewDispatcher()

	if common.Config.ArchiveEnabled() {
		if err := util.InitMinIO(); err != nil {
			slog.Error("Failed to initialize MinIO", "error", err)
			os.Exit(1)
		}
		archiver := webhook.NewArchiver(common.MinIOClient, *common.Config.BucketSigned, common.Workflow)
		common.Dispatcher.Extend(webhook.EventDocumentComplete, archiver.Handle)
		slog.Info("Signed-document archive enabled", "bucket", *common.Config.BucketSigned)
	}

	if common.Config.MailEnabled() {
		util.InitDialer()
		notifier := webhook.NewNotifier(common.Dialer, *common.Config.MailUser, *common.Config.MailNotify)
		common.Dispatcher.Extend(webhook.EventDocumentComplete, notifier.Handle)
		common.Dispatcher.Extend(webhook.EventDocumentDeclined, notifier.Handle)
		slog.Info("Terminal-event mail notifications enabled", "to", *common.Config.MailNotify)
	}

	api.InitFiber()
}
