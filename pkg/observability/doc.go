/*
Package observability turns widget lifecycle hooks into logs and Prometheus metrics.

Both Metrics.Hooks and LoggingHooks return domain.LifecycleHooks; combine them
with LifecycleHooks.Merge and pass the result to starrating.WithLifecycleHooks.
*/
package observability
