// Package kernel contains the shared value objects of the domain model:
// UUID identifiers and Money amounts. Kernel types are immutable, validated
// on construction, and free of any dependency on the aggregates that use them.
package kernel
