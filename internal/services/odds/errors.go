package odds

// OddsError is a custom error type for odds-related errors
type OddsError string

// Error implements the error interface
func (e OddsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidDice      OddsError = "dice count and sides must be positive and target must not be negative"
	ErrTooManyDice      OddsError = "too many dice"
	ErrTooManySides     OddsError = "too many sides"
	ErrInvalidTrials    OddsError = "trials must be positive"
	ErrTooManyTrials    OddsError = "too many trials"
	ErrMissingChannel   OddsError = "channel ID cannot be empty"
	ErrHistoryDisabled  OddsError = "query history is not configured"
	ErrNilConfig        OddsError = "config cannot be nil"
	ErrNilDiceRoller    OddsError = "dice roller cannot be nil"
	ErrNilClock         OddsError = "clock cannot be nil"
	ErrNilUUIDGenerator OddsError = "UUID generator cannot be nil"
)
