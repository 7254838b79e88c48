// Package unit specializes the result container for operations whose
// success carries no data. Only the error payload is stored; transforms
// take no-argument callables on the success path and every failure policy
// matches the valued container exactly.
package unit
