// Copyright (C) 2025 Brigham Skarda

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package chess

import "github.com/op/go-logging"

// log is the package logger. Everything the library has to say is at Debug
// level (rejected FENs, perft divide breakdowns), so it is silent by
// default. Consumers raise the level through the go-logging API using the
// "chesscore" module name.
var log = logging.MustGetLogger("chesscore")

func init() {
	logging.SetLevel(logging.INFO, "chesscore")
}
