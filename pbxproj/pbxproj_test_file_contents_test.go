package pbxproj

const (
	minimalProjectId = "0A1B2C3D0A1B2C3D00000001"
	minimalTargetId  = "0A1B2C3D0A1B2C3D00000002"
	minimalPhaseId   = "0A1B2C3D0A1B2C3D00000003"

	minimalProjectContent = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
/* End PBXBuildFile section */

/* Begin PBXFrameworksBuildPhase section */
		0A1B2C3D0A1B2C3D00000003 /* Frameworks */ = {
			isa = PBXFrameworksBuildPhase;
			buildActionMask = 2147483647;
			files = (
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXFrameworksBuildPhase section */

/* Begin PBXNativeTarget section */
		0A1B2C3D0A1B2C3D00000002 /* App */ = {
			isa = PBXNativeTarget;
			buildPhases = (
				0A1B2C3D0A1B2C3D00000003 /* Frameworks */,
			);
			dependencies = (
			);
			name = App;
			productName = App;
			productType = "com.apple.product-type.application";
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		0A1B2C3D0A1B2C3D00000001 /* Project object */ = {
			isa = PBXProject;
			compatibilityVersion = "Xcode 14.0";
			projectDirPath = "";
			projectRoot = "";
			targets = (
				0A1B2C3D0A1B2C3D00000002 /* App */,
			);
		};
/* End PBXProject section */
	};
	rootObject = 0A1B2C3D0A1B2C3D00000001 /* Project object */;
}
`

	runnerProjectId = "97C146E61CF9000F007C117D"
	runnerTargetId  = "97C146ED1CF9000F007C117D"
	runnerPhaseId   = "97C146EB1CF9000F007C117D"

	runnerProjectContent = `// !$*UTF8*$!
{
	archiveVersion = 1;
	classes = {
	};
	objectVersion = 54;
	objects = {

/* Begin PBXBuildFile section */
		1498D2341E8E89220040F4C2 /* GeneratedPluginRegistrant.m in Sources */ = {isa = PBXBuildFile; fileRef = 1498D2331E8E89220040F4C2 /* GeneratedPluginRegistrant.m */; };
		74858FAF1ED2DC5600515810 /* AppDelegate.swift in Sources */ = {isa = PBXBuildFile; fileRef = 74858FAE1ED2DC5600515810 /* AppDelegate.swift */; };
		F1E2D3C4B5A6978812345678 /* Pods_Runner.framework in Frameworks */ = {isa = PBXBuildFile; fileRef = 0F1E2D3C4B5A697812345678 /* Pods_Runner.framework */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		0F1E2D3C4B5A697812345678 /* Pods_Runner.framework */ = {isa = PBXFileReference; explicitFileType = wrapper.framework; includeInIndex = 0; path = Pods_Runner.framework; sourceTree = BUILT_PRODUCTS_DIR; };
		1498D2331E8E89220040F4C2 /* GeneratedPluginRegistrant.m */ = {isa = PBXFileReference; fileEncoding = 4; lastKnownFileType = sourcecode.c.objc; path = GeneratedPluginRegistrant.m; sourceTree = "<group>"; };
		74858FAE1ED2DC5600515810 /* AppDelegate.swift */ = {isa = PBXFileReference; fileEncoding = 4; lastKnownFileType = sourcecode.swift; path = AppDelegate.swift; sourceTree = "<group>"; };
		97C146EE1CF9000F007C117D /* Runner.app */ = {isa = PBXFileReference; explicitFileType = wrapper.application; includeInIndex = 0; path = Runner.app; sourceTree = BUILT_PRODUCTS_DIR; };
/* End PBXFileReference section */

/* Begin PBXFrameworksBuildPhase section */
		97C146EB1CF9000F007C117D /* Frameworks */ = {
			isa = PBXFrameworksBuildPhase;
			buildActionMask = 2147483647;
			files = (
				F1E2D3C4B5A6978812345678 /* Pods_Runner.framework in Frameworks */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXFrameworksBuildPhase section */

/* Begin PBXGroup section */
		97C146E51CF9000F007C117D = {
			isa = PBXGroup;
			children = (
				97C146EF1CF9000F007C117D /* Products */,
			);
			sourceTree = "<group>";
		};
		97C146EF1CF9000F007C117D /* Products */ = {
			isa = PBXGroup;
			children = (
				97C146EE1CF9000F007C117D /* Runner.app */,
			);
			name = Products;
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXNativeTarget section */
		97C146ED1CF9000F007C117D /* Runner */ = {
			isa = PBXNativeTarget;
			buildConfigurationList = 97C147051CF9000F007C117D /* Build configuration list for PBXNativeTarget "Runner" */;
			buildPhases = (
				97C146EA1CF9000F007C117D /* Sources */,
				97C146EB1CF9000F007C117D /* Frameworks */,
			);
			buildRules = (
			);
			dependencies = (
			);
			name = Runner;
			productName = Runner;
			productReference = 97C146EE1CF9000F007C117D /* Runner.app */;
			productType = "com.apple.product-type.application";
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		97C146E61CF9000F007C117D /* Project object */ = {
			isa = PBXProject;
			attributes = {
				BuildIndependentTargetsInParallel = YES;
				LastUpgradeCheck = 1510;
				ORGANIZATIONNAME = "";
				TargetAttributes = {
					97C146ED1CF9000F007C117D = {
						CreatedOnToolsVersion = 7.3.1;
						LastSwiftMigration = 1100;
					};
				};
			};
			buildConfigurationList = 97C146E91CF9000F007C117D /* Build configuration list for PBXProject "Runner" */;
			compatibilityVersion = "Xcode 9.3";
			developmentRegion = en;
			hasScannedForEncodings = 0;
			knownRegions = (
				en,
				Base,
			);
			mainGroup = 97C146E51CF9000F007C117D;
			productRefGroup = 97C146EF1CF9000F007C117D /* Products */;
			projectDirPath = "";
			projectRoot = "";
			targets = (
				97C146ED1CF9000F007C117D /* Runner */,
			);
		};
/* End PBXProject section */

/* Begin PBXSourcesBuildPhase section */
		97C146EA1CF9000F007C117D /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				74858FAF1ED2DC5600515810 /* AppDelegate.swift in Sources */,
				1498D2341E8E89220040F4C2 /* GeneratedPluginRegistrant.m in Sources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXSourcesBuildPhase section */

/* Begin XCBuildConfiguration section */
		97C147031CF9000F007C117D /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				ALWAYS_SEARCH_USER_PATHS = NO;
				IPHONEOS_DEPLOYMENT_TARGET = 12.0;
			};
			name = Debug;
		};
		97C147061CF9000F007C117D /* Debug */ = {
			isa = XCBuildConfiguration;
			buildSettings = {
				PRODUCT_BUNDLE_IDENTIFIER = com.example.runner;
				PRODUCT_NAME = "$(TARGET_NAME)";
			};
			name = Debug;
		};
/* End XCBuildConfiguration section */

/* Begin XCConfigurationList section */
		97C146E91CF9000F007C117D /* Build configuration list for PBXProject "Runner" */ = {
			isa = XCConfigurationList;
			buildConfigurations = (
				97C147031CF9000F007C117D /* Debug */,
			);
			defaultConfigurationIsVisible = 0;
			defaultConfigurationName = Debug;
		};
		97C147051CF9000F007C117D /* Build configuration list for PBXNativeTarget "Runner" */ = {
			isa = XCConfigurationList;
			buildConfigurations = (
				97C147061CF9000F007C117D /* Debug */,
			);
			defaultConfigurationIsVisible = 0;
			defaultConfigurationName = Debug;
		};
/* End XCConfigurationList section */
	};
	rootObject = 97C146E61CF9000F007C117D /* Project object */;
}
`

	configuredPackageRefId = "C0FFEE00C0FFEE00C0FFEE01"

	// Project that already declares a Swift package.
	configuredProjectContent = `// !$*UTF8*$!
{
	objects = {

/* Begin PBXBuildFile section */
		C0FFEE00C0FFEE00C0FFEE03 /* Lib in Frameworks */ = {isa = PBXBuildFile; productRef = C0FFEE00C0FFEE00C0FFEE02 /* Lib */; };
/* End PBXBuildFile section */

/* Begin PBXFrameworksBuildPhase section */
		0A1B2C3D0A1B2C3D00000003 /* Frameworks */ = {
			isa = PBXFrameworksBuildPhase;
			files = (
				C0FFEE00C0FFEE00C0FFEE03 /* Lib in Frameworks */,
			);
		};
/* End PBXFrameworksBuildPhase section */

/* Begin PBXNativeTarget section */
		0A1B2C3D0A1B2C3D00000002 /* App */ = {
			isa = PBXNativeTarget;
			name = App;
			packageProductDependencies = (
				C0FFEE00C0FFEE00C0FFEE02 /* Lib */,
			);
			productType = "com.apple.product-type.application";
		};
/* End PBXNativeTarget section */

/* Begin PBXProject section */
		0A1B2C3D0A1B2C3D00000001 /* Project object */ = {
			isa = PBXProject;
			packageReferences = (
				C0FFEE00C0FFEE00C0FFEE01 /* XCRemoteSwiftPackageReference "lib" */,
			);
			targets = (
				0A1B2C3D0A1B2C3D00000002 /* App */,
			);
		};
/* End PBXProject section */

/* Begin XCRemoteSwiftPackageReference section */
		C0FFEE00C0FFEE00C0FFEE01 /* XCRemoteSwiftPackageReference "lib" */ = {
			isa = XCRemoteSwiftPackageReference;
			repositoryURL = "https://example.com/lib.git";
			requirement = {
				kind = upToNextMajorVersion;
				minimumVersion = 2.0.0;
			};
		};
/* End XCRemoteSwiftPackageReference section */

/* Begin XCSwiftPackageProductDependency section */
		C0FFEE00C0FFEE00C0FFEE02 /* Lib */ = {
			isa = XCSwiftPackageProductDependency;
			package = C0FFEE00C0FFEE00C0FFEE01 /* XCRemoteSwiftPackageReference "lib" */;
			productName = Lib;
		};
/* End XCSwiftPackageProductDependency section */
	};
	rootObject = 0A1B2C3D0A1B2C3D00000001 /* Project object */;
}
`
)
