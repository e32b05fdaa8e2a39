// Package dto defines the HTTP request and response shapes, including the
// {data: ...} envelopes applied uniformly to successful responses.
package dto
