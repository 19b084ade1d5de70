// Package tasks runs background work on a backlite queue stored in its own
// SQLite file.
//
// Queues:
//   - send_booking_confirmation: mails the traveller after a booking is stored
//   - notify_contact_message: mails the operations address about a new message
//   - booking_digest: mails the operations address a summary of open work
package tasks
