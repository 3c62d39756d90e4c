package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconPin      = "\uf08d" // thumb tack
	IconTrash    = "\uf1f8" // trash
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconShield   = "\uf132" // shield
	IconKeyboard = "\uf11c" // keyboard
	IconWindow   = "\uf2d0" // window
)
