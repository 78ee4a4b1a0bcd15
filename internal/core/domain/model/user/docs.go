// Package user provides the User aggregate: the account of a student or
// mover, including the mover credit balance and the push notification
// token used for job status notifications.
package user
