// Package registration validates user registration attempts and hands
// accepted ones to an external collaborator.
//
// A Record holds the raw form values. Validate trims the non-secret fields
// and applies an ordered rule chain per field; each failing field reports
// only its first failing rule:
//
//	name             required
//	email            required, email shape
//	password         required, 5-20 characters, complexity
//	confirmPassword  equal to password
//	phoneNumber      required, optional "+" and 10-12 digits
//	country          required
//	zipCode          required, 12345 or 12345-6789
//
// The password complexity rule requires an uppercase letter, a lowercase
// letter, a digit and one of @$!%*?&, at least 8 characters and nothing
// outside that set.
//
// Service.Submit validates and, only when the whole record is accepted,
// calls its Submitter exactly once:
//
//	svc := registration.NewService(registration.MultiSubmitter(
//	    registration.LogSubmitter(log),
//	    welcome,
//	))
//	res, err := svc.Submit(ctx, rec)
//	if err != nil {
//	    // accepted, but the handoff failed
//	}
//	if !res.Accepted() {
//	    msgs := res.Messages() // field -> message
//	}
package registration
