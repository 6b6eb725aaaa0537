// Copyright (c) 2026 Periplus Travel. All rights reserved.
// Author: hello@periplus.travel

/*
Package schema centralizes table and column identifiers for every query.

Stores build SQL with fmt.Sprintf against these definitions instead of
spelling column names inline, so a rename touches exactly one file.

Layout:

  - geo.*     — the Region → Prefecture → Division → Destination hierarchy,
    plus the precomputed view tables the resolver can read instead.
  - content.* — publishable content kinds and their child tables.
  - site.*    — singleton site settings.
  - editors.* — CMS editor accounts.
*/
package schema
