// Package services implements the driving ports: the classifier, the
// batch ingestion pipeline, the read-only insights queries and the
// get-or-create summary cache. Services hold no global state; every
// dependency is injected through the constructor so tests can swap in
// doubles for the fetcher, scorer, summarizer and store.
package services
