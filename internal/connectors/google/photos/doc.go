// Package photos implements a quota-aware caching client for the
// Google Photos Library API.
//
// The client sits in front of a paginated, rate-limited, daily-quota
// constrained API and balances three concerns: never exceeding the
// provider's per-second burst or daily quota, avoiding redundant
// round-trips for repeated or overlapping queries, and invalidating
// cached state when writes occur. It is safe for concurrent use by
// many callers sharing one instance per authenticated session.
//
// The pieces compose explicitly:
//
//   - QuotaLimiter gates every network call behind a burst-token
//     reserve, a sliding one-second window and a hard daily quota.
//   - TTLCache holds responses with per-entry expiry and LRU eviction.
//   - FilterBuilder assembles immutable search predicates.
//   - Client orchestrates cache lookups, pagination, batch chunking
//     and write invalidation over a narrow Executor collaborator.
package photos
