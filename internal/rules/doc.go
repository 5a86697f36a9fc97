// Package rules decides which repository nodes carry distribution metadata
// that must be audited, and which timestamp that metadata is compared with.
//
// A MatchRule combines a path pattern (matched against the full node path), a
// required node type and a DateChain. Rules are configured as comma-separated
// entries:
//
//	<regex>[<type>]
//	<regex>[<type>;comparisonDate=<CHAIN>]
//
// where CHAIN is one of MODIFIED, MODIFIED_CREATED_OR_CURRENT or
// CQ_MODIFIED_CREATED_OR_CURRENT. The type is either a primary type or, for
// nt:unstructured and cq:PageContent nodes, a sling:resourceType value.
//
// A RuleSet evaluates include rules before exclude rules; within each list
// the first matching rule wins.
package rules
