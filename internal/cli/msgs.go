package cli

// Command descriptions and flag help.
const (
	MsgRootShort = "Find shortest word ladders"
	MsgRootLong  = `wordladder finds a shortest chain of dictionary words between two words,
where each step inserts, deletes, or substitutes exactly one letter and no
word repeats.`

	MsgFindShort     = "Find a shortest ladder from START to END"
	MsgVerifyShort   = "Run a set of ladder queries and validate every result"
	MsgDistanceShort = "Print the edit distance between two words"

	MsgFlagConfig   = "config file (default $WORDLADDER_CONFIG, else env and defaults only)"
	MsgFlagDict     = "word list file, one or more whitespace-separated words per line"
	MsgFlagStrategy = "candidate strategy: synthesis or scan"
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput   = "output format: text, yaml or json"
	MsgFlagPairs    = "YAML file with a list of {start, end} pairs"
	MsgFlagWithin   = "only report whether the distance is within this budget"
)

// Verification output formats.
const (
	MsgVerifyHeader = "Test %d (%s -> %s), ladder length: %d\n"
	MsgVerifyFailed = "%d of %d queries failed"
)
