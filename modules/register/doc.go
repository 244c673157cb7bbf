// Package register mounts the registration form on a chi router.
//
// The form posts to /register. Accepted submissions render the success view,
// rejected ones re-render the form with 422 and the first message of every
// failing field; password values are never echoed back. DataStar requests
// receive the form or success view as an element patch of #register-form.
// POST /api/register accepts the same record as JSON and answers 201 with the
// public record or 422 with field details.
//
//	svc := registration.NewService(registration.LogSubmitter(log))
//	r.Mount("/", register.NewService(svc, nil, nil, log).Handle())
package register
