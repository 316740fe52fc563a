package core

// TeamId identifies a team within a tournament.
// The value itself carries no ordering semantics.
type TeamId uint8

// TeamRank is a position in an external ranking table,
// e.g. the European Qualifiers overall ranking.
// A lower rank is better.
type TeamRank uint16
