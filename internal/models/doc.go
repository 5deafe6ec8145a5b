// Package models defines the core domain models for billsplit.
//
// # Models
//
//   - Friend: a person the current user splits bills with, carrying a running balance
//
// There is a single implicit user (the person operating the widget). Every
// balance is expressed relative to that user.
//
// # Balance Sign Convention
//
//  1. Negative: the user owes the friend
//  2. Positive: the friend owes the user
//  3. Zero: the two are even
//
// Friends are never deleted. A balance changes only when a bill is split with
// that friend.
package models
