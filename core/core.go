package core

const APP_NAME = "steam-librarian"

type Options struct {
	SteamPath      string `short:"p" long:"steam-path" description:"Use this Steam install location instead of looking it up"`
	SetSteamPath   string `short:"s" long:"set-steam-path" description:"Remember a Steam install location for future runs and exit"`
	LibraryFolders bool   `short:"f" long:"library-folders" description:"Also read libraries listed in steamapps/libraryfolders.vdf"`
	PlainPrompt    bool   `short:"y" long:"plain-prompt" description:"Confirm moves with a plain y/N line prompt"`
	LogLocation    string `short:"l" long:"log-location" description:"Specifies path to logfile. Defaults to User's Cache Dir / steam-librarian.log"`
	Verbose        bool   `short:"v" long:"verbose" description:"Enable verbose logging"`
}

// Apply fills every option left unset on the command line from the saved
// settings.
func (o *Options) Apply(perfs *LibrarianPerfs) {
	if o.SteamPath == "" {
		o.SteamPath = perfs.SteamPath
	}
	if o.LogLocation == "" {
		o.LogLocation = perfs.LogLocation
	}
	o.LibraryFolders = o.LibraryFolders || perfs.LibraryFolders
	o.PlainPrompt = o.PlainPrompt || perfs.PlainPrompt
}
