// Package timezone centralizes the application timezone. Reservation and block
// instants are stored in UTC; this package only affects presentation and the
// parsing of wall-clock input from the dashboard.
package timezone
