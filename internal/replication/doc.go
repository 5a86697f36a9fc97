// Package replication reads the distribution metadata a replication agent
// records on a repository node: the last distribution date and the last
// distribution action.
//
// The default agent ("publish") writes unsuffixed properties
// (cq:lastReplicated, cq:lastPublished, cq:lastReplicationAction); every other
// agent writes the same names suffixed with "_<agent>".
//
// Properties are resolved lazily. Each lookup exists in two modes: a failing
// one (LastDate, LastAction) that reports absence as ErrNotSet, and a
// non-failing one (LookupLastDate, LookupLastAction) for callers that expect
// the metadata to be absent.
package replication
