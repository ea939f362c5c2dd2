// Package orientpath scores grid mazes for a traveller whose turns cost far
// more than its steps, and finds every cell that some cheapest route uses.
//
// What is orientpath?
//
//	A small, dependency-light library built around one search:
//		• grid:     Coordinate, Heading and a generic rectangular Grid[T]
//		• dijkstra: Dijkstra over (cell, heading) states that keeps every
//		            equally-cheap predecessor, then rebuilds all optimal routes
//		• maze:     the '#', '.', 'S', 'E' text format, validation and the two
//		            public answers, LowestScore and CellsOnAnyOptimalPath
//		• cmd/orientpath: command-line front end
//
// Why the heading matters
//
//	Reaching a cell facing Up and reaching it facing Right are different
//	situations: the next step may or may not need a 1000-point turn. The
//	search therefore runs over up to four states per cell.
//
// Quick ASCII example:
//
//	#####
//	#S.##     S faces Right. Both routes turn twice and cost
//	#..E#     1 + 1001 + 1001 = 2003; together they cover 5 cells.
//	#####
//
//	go get github.com/katalvlaran/orientpath
package orientpath
