// Package order contains the Order aggregate root and its lifecycle state
// machine. Orders move from Pending through InProgress and Completed to the
// terminal Delivered state; each transition stamps the timestamp that the
// forecasting engine later uses to derive actual production durations.
package order
