package assets

// Duck is the clickable sprite. Its full 16x11 box is the hit area.
var Duck = Pixmap{
	"................",
	".....YYYYYY.....",
	"...YYYYYYYYYY...",
	"..YYYYYYYYYYkY..",
	".YYYYYYOYYYYYYY.",
	".YYYYOOOYYYYYYOO",
	"..YYYYYYYYYYYY..",
	"....YYYBYYY.....",
	"......YBY.......",
	".......Y........",
	"................",
}

var Pipe = Pixmap{
	"GGGGGGGGGGGGGGGG",
	"GGGGGGGGGGGGGGGG",
	"GGGGGGGGGGGGGGGG",
	"GGGGGGGGGGGGGGGG",
	"GGGGGGGGGGGGGGGG",
	"GGGGGGGGGGGGGGGG",
}

var Bush = Pixmap{
	"..gggggggggg..",
	".gggggggggggg.",
	"gggggggggggggg",
	".gggggggggggg.",
	"..gggggggggg..",
}

var Cloud = Pixmap{
	"....wwwww....",
	"..wwwwwwwww..",
	".wwwwwwwwwww.",
	"..wwwwwwwww..",
	"....wwwww....",
}

var Block = Pixmap{
	"RRRRRRRR",
	"R..R..RR",
	"RRRRRRRR",
	"R..RR..R",
	"RRRRRRRR",
}

var Sun = Pixmap{
	"..OOO..",
	".OOOOO.",
	"OOOOOOO",
	".OOOOO.",
	"..OOO..",
}
