package common

// SessionKey is the storage key of the persisted session blob. The name is
// shared with the mobile app so both clients read the same slot.
const SessionKey = "@userdata"

// SessionSavedAtKey holds the RFC 3339 time of the last session write.
const SessionSavedAtKey = SessionKey + ":saved_at"

// AffiliateRole is the directory role allowed to sign in.
const AffiliateRole = "affiliate"

// IdentifierMaxLen is the maximum length of a national ID number.
const IdentifierMaxLen = 8

// DefaultSignupURL is opened by the "Asociate" action.
const DefaultSignupURL = "https://integra-platform.web.app/#contact"
