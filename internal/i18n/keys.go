package i18n

const (
	KeyWelcome         = "WELCOME"
	KeyAskUserName     = "ASK_USER_NAME"
	KeyAskOpponentName = "ASK_OPPONENT_NAME"
	KeyRules           = "RULES"
	KeyInputFormat     = "INPUT_FORMAT"
	KeyAskShipStart    = "ASK_SHIP_START"
	KeyAskShipEnd      = "ASK_SHIP_END"
	KeyAskSingleDeck   = "ASK_SINGLE_DECK"
	KeyAskTarget       = "ASK_TARGET"
	KeyWaitForOpponent = "WAIT_FOR_OPPONENT"
	KeyGameStarted     = "GAME_STARTED"
	KeyFieldTitle      = "FIELD_TITLE"
	KeyEnemyShoots     = "ENEMY_SHOOTS"
	KeyEnemyMissed     = "ENEMY_MISSED"
	KeyEnemyHit        = "ENEMY_HIT"
	KeyEnemySunk       = "ENEMY_SUNK"
	KeyYouMissed       = "YOU_MISSED"
	KeyYouHit          = "YOU_HIT"
	KeyYouSunk         = "YOU_SUNK"
	KeyRepeatedShot    = "REPEATED_SHOT"
	KeyBadCoordinates  = "BAD_COORDINATES"
	KeyRejected        = "REJECTED"
	KeyErrEmpty        = "ERR_EMPTY"
	KeyErrLength       = "ERR_LENGTH"
	KeyErrNumber       = "ERR_NUMBER"
	KeyErrRange        = "ERR_RANGE"
	KeyErrShape        = "ERR_SHAPE"
	KeyErrCellNotEmpty = "ERR_CELL_NOT_EMPTY"
	KeyErrTooClose     = "ERR_TOO_CLOSE"
	KeyAbstractError   = "ABSTRACT_ERROR"
	KeyYouWon          = "YOU_WON"
	KeyYouLost         = "YOU_LOST"
	KeyGoodbye         = "GOODBYE"
)
