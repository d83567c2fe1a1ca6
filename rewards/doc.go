// Package rewards models two small employee-engagement services: a points
// ledger where users earn and redeem points without ever going negative,
// and a recognition log where employees thank each other.
//
// Both services are safe for concurrent use.
package rewards
