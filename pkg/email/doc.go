// Package email sends transactional emails through a provider-agnostic
// EmailSender interface.
//
// Two implementations are provided: a Postmark client for real delivery and
// DevSender, which writes every message to a local directory as an HTML file
// plus JSON metadata. NewSender picks Postmark when both tokens are configured
// and falls back to DevSender otherwise.
//
//	sender, err := email.NewSender(cfg)
//	if err != nil {
//	    return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "user@example.com",
//	    Subject:  "Welcome",
//	    BodyHTML: body,
//	    Tag:      "welcome",
//	})
//
// Bodies are usually templ components rendered with templates.Render.
//
// All senders validate SendEmailParams first; invalid parameters yield an
// error matching ErrInvalidParams, delivery failures ErrFailedToSendEmail and
// bad configuration ErrInvalidConfig.
package email
