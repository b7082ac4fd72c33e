// Package matcher scores observed alga traits against a catalog and picks the
// species the specimen most likely belongs to.
//
// Each species is scored on the attributes it specifies only. A species
// qualifies once the share of matching attributes reaches the threshold
// (70% by default); among qualifying species the one with the most matching
// attributes wins, and catalog order settles ties. Identification never
// fails: anything that does not qualify simply yields an unidentified result.
package matcher
