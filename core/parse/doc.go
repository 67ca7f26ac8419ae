// Package parse provides tolerant JSON decoding for raw provider responses.
// Provider APIs occasionally return payloads with minor syntax defects
// (single quotes, trailing commas, unquoted keys), so the decoder applies
// automatic JSON repair and retries before giving up. The main entry point
// is [TolerantUnmarshal]; normalizers use its failure as the signal to
// degrade to their parsing-error result rather than surfacing an error.
package parse
