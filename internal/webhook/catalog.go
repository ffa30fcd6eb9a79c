package webhook

// Terminal document events with extension hooks attached at startup.
const (
	EventDocumentComplete = "user.document.complete"
	EventDocumentDeclined = "user.document.declined"
)

// Catalog is the full set of provider event types this service recognizes.
// Anything outside it is logged and ignored.
var Catalog = []string{
	"user.document.create",
	"user.document.open",
	"user.document.update",
	"user.document.delete",
	"user.document.viewed",
	"user.document.signed",
	EventDocumentDeclined,
	EventDocumentComplete,
	"user.document.field.update",

	"user.document.fieldinvite.create",
	"user.document.fieldinvite.sent",
	"user.document.fieldinvite.accept",
	"user.document.fieldinvite.decline",
	"user.document.fieldinvite.revoke",
	"user.document.fieldinvite.resend",
	"user.document.fieldinvite.delete",
	"user.document.fieldinvite.replace",
	"user.document.fieldinvite.reassign",
	"user.document.fieldinvite.signed",
	"user.document.fieldinvite.consent.agreed",
	"user.document.fieldinvite.consent.declined",
	"user.document.fieldinvite.authentication.failed",
	"user.document.fieldinvite.email.delivery.failed",

	"user.document.freeform.create",
	"user.document.freeform.signed",
	"user.document.freeform.cancel",
	"user.document.freeform.resend",

	"user.template.copy",
	"user.template.update",
	"user.template.delete",

	"user.document_group.create",
	"user.document_group.update",
	"user.document_group.delete",
	"user.document_group.complete",
	"user.document_group.open",

	"user.document_group.invite.create",
	"user.document_group.invite.sent",
	"user.document_group.invite.resend",
	"user.document_group.invite.reassign",
	"user.document_group.invite.cancel",
	"user.document_group.invite.declined",
	"user.document_group.invite.signed",
	"user.document_group.invite.update",
	"user.document_group.invite.consent.agreed",
	"user.document_group.invite.consent.accepted",
	"user.document_group.invite.consent.declined",
	"user.document_group.invite.consent.revoked",
	"user.document_group.invite.consent.withdrawn",
	"user.document_group.invite.authentication.failed",
	"user.document_group.invite.email.delivery.failed",
	"user.document_group.invite.invite.expired",

	"user.document_group.freeform.create",
	"user.document_group.freeform.signed",
	"user.document_group.freeform.cancel",
	"user.document_group.freeform.resend",
}
