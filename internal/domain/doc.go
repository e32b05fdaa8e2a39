// Package domain contains the core entities for the People API.
//
// Domain types mirror the persisted shape of the people table and are
// independent of how they are transmitted; the API-facing shapes live in
// the dto package and the translation between the two in mapper.
package domain
