package apierrors

const (
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTask       = "errorListTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgInvalidAuthPayload = "invalidAuthPayload"
	MsgEmailTaken         = "emailTaken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgMissingToken       = "missingToken"
	MsgInvalidToken       = "invalidToken"
	MsgUserNotFound       = "userNotFound"
	MsgFailSignUp         = "failSignUp"
	MsgFailSignIn         = "failSignIn"

	MsgInvalidCalendarQuery = "invalidCalendarQuery"
	MsgFailBuildProgress    = "failBuildProgress"

	MsgInvalidPreferences = "invalidPreferences"
	MsgFailPreferences    = "failPreferences"
)
