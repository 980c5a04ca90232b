package app

// DefaultMaxTurns caps the number of rolls Run resolves before giving up.
// Real games end long before; the cap only guards against a broken chooser loop.
const DefaultMaxTurns = 10000
