// Package domain contains the core model of the number DNA analyzer: the
// eight fields and their static pair catalogues, count maps, the resolver
// log, generation requests and the analysis payload.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// net/http, or the filesystem. Infra/adapters map into/from these types.
package domain
