// Package figma extracts design fields from Figma documents.
//
// Fields come either from the live REST API (Client.Fields) or from a saved
// GET /v1/files/:key/nodes response (DecodeNodes). Extraction is heuristic:
// every TEXT node that ends with a colon or starts with an upper-case letter
// is treated as a field label.
package figma
