package util

import (
	"github.com/crmbridge/signbridge-api/common"
	"gopkg.in/gomail.v2"
)

func InitDialer() {
	dialer := gomail.NewDialer(*common.Config.MailHost, 587, *common.Config.MailUser, *common.Config.MailPass)
	common.Dialer = dialer
}
