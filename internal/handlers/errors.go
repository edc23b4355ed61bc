package handlers

var (
	MsgEmailRegistered         = "Email is already registered."
	MsgEmailTooLong            = "Email must be at most 100 characters long."
	MsgPasswordTooLong         = "Password must be at most 72 bytes long."
	MsgRegisterFailed          = "Registration failed. Please try again later."
	MsgLoginInvalidCredentials = "Invalid email or password."
	MsgLoginMissingFields      = "Email and password are required."
)
