// Package forecast contains the data types of the production forecasting
// engine: the prediction request, the training example derived from delivered
// orders, the model statistics snapshot, and the delivery estimate produced by
// the queue scheduler.
package forecast
