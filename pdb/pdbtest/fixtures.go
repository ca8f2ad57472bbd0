// Test inputs. Columns matter, so edit with care.

package pdbtest

// Small is a two chain crystal structure with most of the records the
// reader knows about. Line 3 of chain A is in two conformations.
const Small = `HEADER    HYDROLASE                               28-MAR-07   1ABC              
TITLE     A SMALL TEST PROTEIN                                                  
TITLE    2 WITH TWO CHAINS                                                      
KEYWDS    TEST, DISULFIDE                                                       
EXPDTA    X-RAY DIFFRACTION                                                     
REMARK   2                                                                      
REMARK   2 RESOLUTION.    1.80 ANGSTROMS.                                       
SEQRES   1 A    4  CYS GLY ALA CYS                                              
SEQRES   1 B    4  CYS GLY ALA CYS                                              
SSBOND   1 CYS A    1    CYS A    4                          1555   1555  2.04  
SSBOND   2 CYS A    1    CYS B    9                          1555   1555  2.04  
SSBOND   3 CYS A    4    CYS B    1                          1555   1555  2.05  
CISPEP   1 GLY A    2    ALA A    3          0        -2.50                     
CRYST1   50.000   60.000   70.000  90.00  90.00  90.00 P 21 21 21    4          
ORIGX1      1.000000  0.000000  0.000000        0.00000                         
ORIGX2      0.000000  1.000000  0.000000        0.00000                         
ORIGX3      0.000000  0.000000  1.000000        0.00000                         
SCALE1      0.020000  0.000000  0.000000        0.00000                         
SCALE2      0.000000  0.016667  0.000000        0.00000                         
SCALE3      0.000000  0.000000  0.014286        0.00000                         
MTRIX1   1  0.500000 -0.866025  0.000000        1.00000    1                    
MTRIX2   1  0.866025  0.500000  0.000000        2.00000    1                    
MTRIX3   1  0.000000  0.000000  1.000000        3.00000    1                    
ATOM      1  N   CYS A   1       9.000   9.000   9.000  1.00 20.00           N  
ATOM      2  CA  CYS A   1      10.000  10.000  10.000  1.00 20.00           C  
ATOM      3  SG  CYS A   1      11.000  12.000  10.000  1.00 20.00           S  
ANISOU    3  SG  CYS A   1     1000   2000   3000   -100    200   -300       S  
ATOM      4  N   GLY A   2      12.500  10.500  10.000  1.00 20.00           N  
ATOM      5  CA  GLY A   2      13.800  10.000  10.000  1.00 20.00           C  
ATOM      6  N   ALA A   3      16.300  10.500  10.000  1.00 20.00           N  
ATOM      7  CA AALA A   3      17.600  10.000  10.000  0.60 20.00           C  
ATOM      8  CA BALA A   3      17.700  10.100  10.000  0.40 20.00           C  
ATOM      9  N   CYS A   4      20.100  10.500  10.000  1.00 20.00           N  
ATOM     10  CA  CYS A   4      21.400  10.000  10.000  1.00 20.00           C  
ATOM     11  SG  CYS A   4      12.200  13.600  10.300  1.00 20.00           S  
TER      12      CYS A   4                                                      
ATOM     13  CA  CYS B   1      30.000  30.000  30.000  1.00 20.00           C  
ATOM     14  SG  CYS B   1      21.000  12.000  10.000  1.00 20.00           S  
ATOM     15  CA  GLY B   2      33.800  30.000  30.000  1.00 20.00           C  
ATOM     16  CA  GLY B   2A     37.600  30.000  30.000  1.00 20.00           C  
TER      17      GLY B   2A                                                     
HETATM   18 ZN    ZN A 101       5.000   5.000   5.000  1.00 20.00          ZN2+
HETATM   19  O   HOH A 201       1.000   2.000   3.000  1.00 20.00           O  
HETATM   20  O   HOH B 202      48.000   2.000   3.000  1.00 20.00              
CONECT    1    2                                                                
END                                                                             
ATOM    999  CA  GLY C   1       0.000   0.000   0.000  1.00 20.00           C  
`

// Nmr has two models and a dummy cell.
const Nmr = `HEADER    DE NOVO PROTEIN                         01-JAN-99   2XYZ              
EXPDTA    SOLUTION NMR                                                          
CRYST1    1.000    1.000    1.000  90.00  90.00  90.00 P 1           1          
MODEL        1                                                                  
ATOM      1  CA  MET A   1       0.000   0.000   0.000  1.00 20.00           C  
ATOM      2  CA  LYS A   2       3.800   0.000   0.000  1.00 20.00           C  
ATOM      3  CA  LEU A   3       7.600   0.000   0.000  1.00 20.00           C  
TER       4      LEU A   3                                                      
ENDMDL                                                                          
MODEL        2                                                                  
ATOM      1  CA  MET A   1       0.500   0.000   0.000  1.00 20.00           C  
ATOM      2  CA  LYS A   2       4.300   0.000   0.000  1.00 20.00           C  
ATOM      3  CA  LEU A   3       8.100   0.000   0.000  1.00 20.00           C  
TER       4      LEU A   3                                                      
ENDMDL                                                                          
`

// Hybrid36 has residue 9999 followed by A000, which is 10000.
const Hybrid36 = `ATOM      1  CA  GLY A9999       0.000   0.000   0.000  1.00 20.00           C  
ATOM      2  CA  GLY AA000       3.800   0.000   0.000  1.00 20.00           C  
`

// Bad holds one example for each kind of fatal error, keyed by name.
var Bad = map[string]string{
	"ShortAtom": `ATOM      1  CA  GLY A   1       0.000   0.000   0.000  1.00 20.00    
`,
	"AnisouFirst": `ANISOU    1  CA  GLY A   1        1      1      1      0      0      0       C  
`,
	"AnisouTwice": `ATOM      1  CA  GLY A   1       0.000   0.000   0.000  1.00 20.00           C  
ANISOU    1  CA  GLY A   1        1      1      1      0      0      0       C  
ANISOU    1  CA  GLY A   1        1      1      1      0      0      0       C  
`,
	"NoEndmdl": `MODEL        1                                                                  
ATOM      1  CA  GLY A   1       0.000   0.000   0.000  1.00 20.00           C  
MODEL        2                                                                  
`,
	"DupModel": `MODEL        1                                                                  
ATOM      1  CA  GLY A   1       0.000   0.000   0.000  1.00 20.00           C  
ENDMDL                                                                          
MODEL        1                                                                  
`,
	"BetweenModels": `MODEL        1                                                                  
ATOM      1  CA  GLY A   1       0.000   0.000   0.000  1.00 20.00           C  
ENDMDL                                                                          
ATOM      2  CA  GLY A   2       0.000   0.000   0.000  1.00 20.00           C  
`,
	"BadCharge": `HETATM    1 FE    FE A   1       0.000   0.000   0.000  1.00 20.00          FE2x
`,
	"BadAngle": `CRYST1   50.000   60.000   70.000   0.00  90.00  90.00 P 1           1          
`,
}
